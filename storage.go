package gomamayo

type ResultID uint64

// Storage は解析結果の永続化層
type Storage interface {
	AddResult(Result) (ResultID, error)       // 解析結果を保存する。保存したレコードのIDを返す。同じ入力は上書きする。
	GetResultByInput(string) (*Result, error) // 入力語から保存済みの解析結果を取得する。なければnilを返す。
	GetAllResults() ([]Result, error)         // 保存済みの解析結果を全て返す
	CountResults() (int, error)               // 保存済みの解析結果の件数を返す
}
