package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger 每個請求結束後記錄一筆 logrus entry；5xx 以 Error 等級輸出
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// 讓 HTTPErrorHandler 先寫出回應，狀態碼才正確
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			entry := log.WithFields(logrus.Fields{
				"method":     req.Method,
				"path":       path,
				"status":     res.Status,
				"latency":    time.Since(start).String(),
				"request_id": res.Header().Get(echo.HeaderXRequestID),
				"remote_ip":  c.RealIP(),
			})
			switch {
			case res.Status >= 500:
				entry.Error("request failed")
			case res.Status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request handled")
			}
			return nil
		}
	}
}
