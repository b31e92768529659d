package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/shiroemons/go-romtext/internal/romtext/errors"
)

// maxErrorBody はエラーメッセージに含める応答本文の上限
const maxErrorBody = 256

// doJSON はリクエストを送信し、応答のJSONを out に読み込みます。
// 通信エラー、429、5xx、不正なJSONは一時的なエラー、それ以外の4xxは致命的なエラーになります
func doJSON(ctx context.Context, client *http.Client, op string, req *http.Request, out any) error {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.NewTransientError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.NewTransientError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		statusErr := fmt.Errorf("%w: %s: %s", ErrHTTPStatus, resp.Status, body)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return apperrors.NewTransientError(op, statusErr)
		}
		return apperrors.NewFatalError(op, statusErr)
	}

	if err := json.Unmarshal(body, out); err != nil {
		// CAPTCHAなどJSON以外が返ることがある
		return apperrors.NewTransientError(op, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err))
	}
	return nil
}
