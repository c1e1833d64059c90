package binance

// Kind は上流API呼び出しの失敗分類です。
type Kind string

const (
	// KindTimeout はホスト単位のタイムアウト超過です。
	KindTimeout Kind = "timeout"
	// KindTransport はDNS解決・接続確立・切断などの通信路レベルの失敗です。
	KindTransport Kind = "transport"
	// KindUpstreamStatus は上流が200以外のステータスを返したことを示します。
	KindUpstreamStatus Kind = "upstream_status"
	// KindInvalidBody は上流レスポンスがJSONとして解析できないことを示します。
	KindInvalidBody Kind = "invalid_body"
)

// Error は上流API呼び出しの型付きエラーです。
// Messageはハンドラーでそのままクライアントに返されます。
type Error struct {
	Kind    Kind
	Message string
}

// Error はエラーメッセージをそのまま返します。
func (e *Error) Error() string {
	return e.Message
}

// Retryable はフェイルオーバーで次のホストを試してよい失敗かを返します。
// 上流が応答した失敗（ステータス異常・不正JSON）は別ホストでも結果が
// 変わらないため対象外です。
func (e *Error) Retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindTransport
}
