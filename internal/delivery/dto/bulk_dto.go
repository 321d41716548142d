package dto

// IDListRequest is the body of delete_bulk, block_bulk and
// unblock_bulk.
type IDListRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

// BulkIDResult reports which ids of an id-list bulk operation were
// applied and which were skipped because the record no longer exists.
// Applied ids are committed in a single flush.
type BulkIDResult struct {
	Applied []int64 `json:"applied"`
	Skipped []int64 `json:"skipped,omitempty"`
}
