/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package handlers

import (
	libdsp "github.com/nabbar/vdms/dispatch"
)

func init() {
	libdsp.Register("AddEntity", handleAddEntity)
	libdsp.Register("UpdateEntity", handleUpdateEntity)
	libdsp.Register("FindEntity", handleFindEntity)

	libdsp.Register("AddConnection", handleAddConnection)
	libdsp.Register("UpdateConnection", handleUpdateConnection)
	libdsp.Register("FindConnection", handleFindConnection)

	libdsp.Register("AddImage", handleAddImage)
	libdsp.Register("FindImage", handleFindImage)

	libdsp.Register("AddVideo", handleAddVideo)
	libdsp.Register("FindVideo", handleFindVideo)

	libdsp.Register("AddBlob", handleAddBlob)
	libdsp.Register("UpdateBlob", handleUpdateBlob)
	libdsp.Register("FindBlob", handleFindBlob)

	libdsp.Register("AddDescriptorSet", handleAddDescriptorSet)
	libdsp.Register("FindDescriptorSet", handleFindDescriptorSet)

	libdsp.Register("AddDescriptor", handleAddDescriptor)
	libdsp.Register("FindDescriptor", handleFindDescriptor)

	libdsp.Register("AddBoundingBox", handleAddBoundingBox)
}
