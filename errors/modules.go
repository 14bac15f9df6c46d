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

package errors

const (
	MinPkgTransport        = 100
	MinPkgPool             = 200
	MinPkgEnvelope         = 300
	MinPkgDispatch         = 400
	MinPkgQuery            = 500
	MinPkgHandlers         = 600
	MinPkgBackendGraph     = 700
	MinPkgDatabaseGorm     = 720
	MinPkgBackendObject    = 800
	MinPkgDatabase         = 820
	MinPkgDatabaseKVDrv    = 840
	MinPkgReplicate        = 900
	MinPkgFTPSource        = 1000
	MinPkgFTPClient        = 1020
	MinPkgCSVIngest        = 1100
	MinPkgNotify           = 1200
	MinPkgCertificate      = 1300
	MinPkgConfig           = 1400
	MinPkgLogger           = 1500
	MinPkgAdmin            = 1600
	MinPkgHttpCli          = 1700
	MinPkgHttpServer       = 1800
	MinPkgHttpServerPool   = 1820
	MinPkgNats             = 1900
	MinPkgNutsDB           = 2000
	MinPkgAws              = 2100
	MinPkgSMTP             = 2200
	MinPkgSMTPConfig       = 2250
	MinPkgVersion          = 2300
	MinPkgViper            = 2400

	MinAvailable = 3000

	// MIN_AVAILABLE @Deprecated use MinAvailable constant
	MIN_AVAILABLE = MinAvailable
)
