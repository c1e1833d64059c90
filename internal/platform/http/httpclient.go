// Package http は外部API呼び出し用のHTTPクライアントを構成します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は上流取引所API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（リクエスト全体より短い）
//   - MaxIdleConns / IdleConnTimeout: 毎リクエストの新規TLSハンドシェイクを避ける
//   - Client.Timeout: 設定しない。待ち時間の上限は呼び出し側が
//     ホスト単位のcontextで管理する
//
// 注意:
//   - http.DefaultClientは使わないこと。Transportを明示設定しないと
//     接続の再利用とハンドシェイクの時間制御ができない
func NewHTTPClient() *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: t}
}
