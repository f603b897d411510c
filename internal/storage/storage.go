package storage

import "context"

// AppendLog は追記専用のレコードログを抽象化するインターフェース。
// ローカルファイルシステム実装の他、オブジェクトストレージ等に差し替え可能。
type AppendLog interface {
	// Append は key のログ末尾に 1 レコードを追記する。
	// 失敗した場合、部分的に書き込まれたバイトは残らない。
	Append(ctx context.Context, key string, record []byte) error

	// Records は key のログに含まれる全レコードを追記順に返す。
	// ログが存在しない場合は空スライスを返す。
	Records(ctx context.Context, key string) ([][]byte, error)

	// Ping はバックエンドが利用可能かを確認する。
	Ping(ctx context.Context) error
}
