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

package dispatch

import (
	"context"
	"encoding/json"
	"time"

	liberr "github.com/nabbar/vdms/errors"
	libpool "github.com/nabbar/vdms/pool"
)

// Dispatch implements spec's command-dispatcher steps: parse the command
// array, open one backend transaction, run each handler in strict order,
// and either commit or roll back and abort-cascade the remaining slots.
func Dispatch(ctx context.Context, bp libpool.BackendPool, conn libpool.Conn, reqJSON []byte, blobs [][]byte, timeout time.Duration) ([]byte, [][]byte, liberr.Error) {
	if bp == nil || conn == nil {
		return nil, nil, ErrorParamsEmpty.Error(nil)
	}

	var rawCmds []json.RawMessage
	if len(reqJSON) > 0 {
		if err := json.Unmarshal(reqJSON, &rawCmds); err != nil {
			return nil, nil, ErrorRequestDecode.Error(err)
		}
	}

	if len(rawCmds) == 0 {
		return []byte("[]"), nil, nil
	}

	tx, tErr := bp.OpenTx(ctx, conn, timeout, libpool.TxWrite)
	if tErr != nil {
		return nil, nil, ErrorTxBegin.Error(tErr)
	}

	rc := newContext(bp, conn, tx, blobs)
	responses := make([]map[string]any, len(rawCmds))
	aborted := false

	for i, raw := range rawCmds {
		if aborted {
			responses[i] = genericError("Transaction aborted")
			continue
		}

		name, body, ok := singleCommand(raw)
		if !ok {
			responses[i] = genericError("Command does not exist")
			continue
		}

		h, found := lookup(name)
		if !found {
			responses[i] = genericError("Command does not exist")
			continue
		}

		result, err := h(rc, body)
		if err != nil {
			responses[i] = map[string]any{name: map[string]any{"status": -1, "info": err.Error()}}
			aborted = true
			continue
		}

		if result == nil {
			result = map[string]any{}
		}
		if _, has := result["status"]; !has {
			result["status"] = 0
		}
		responses[i] = map[string]any{name: result}
	}

	if !aborted && !rc.BlobsConsumed() {
		_ = bp.RollbackTx(tx)
		return nil, nil, ErrorBlobCountMismatch.Error(nil)
	}

	if aborted {
		_ = bp.RollbackTx(tx)
	} else if cErr := bp.CommitTx(tx); cErr != nil {
		return nil, nil, cErr
	}

	out, mErr := json.Marshal(responses)
	if mErr != nil {
		return nil, nil, ErrorResponseEncode.Error(mErr)
	}

	return out, rc.respBlobs, nil
}

// singleCommand validates that raw has exactly one top-level key and
// returns it alongside its body.
func singleCommand(raw json.RawMessage) (name string, body json.RawMessage, ok bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) != 1 {
		return "", nil, false
	}

	for k, v := range obj {
		name, body = k, v
	}

	return name, body, true
}

func genericError(info string) map[string]any {
	return map[string]any{"status": -1, "info": info}
}
