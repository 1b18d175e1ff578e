// Package bridge carries gateway operations between the UI process and the
// process that owns the database. A call is an operation name plus positional
// json arguments; it resolves with a json result or fails with an error from
// platform/errs. Calls are independent: no retries, no batching.
package bridge

// Operation names understood by the gateway
const (
	CreateDb           = "createDb"
	CreateSchema       = "createSchema"
	SelectAllMemo      = "selectAllMemo"
	SelectMemo         = "selectMemo"
	SelectMemoById     = "selectMemoById"
	SelectAllNotebook  = "selectAllNotebook"
	SelectLastMemo     = "selectLastMemo"
	SelectLastNotebook = "selectLastNotebook"
	InsertMemo         = "insertMemo"
	InsertNotebook     = "insertNotebook"
	DeleteMemo         = "deleteMemo"
	DeleteNotebook     = "deleteNotebook"
)

// Reply is the body of a successful call
type Reply struct {
	Result any `json:"result"`
}

// Message is a one-way call delivered through a queue, its result is dropped
type Message struct {
	Type string `json:"type"`
	Args Args   `json:"args"`
}
