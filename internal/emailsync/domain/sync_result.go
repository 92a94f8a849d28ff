package domain

// AccountSyncResult is the per-account breakdown inside a SyncResult
type AccountSyncResult struct {
	Email           string `json:"email"`
	MessagesFetched int    `json:"messages_fetched"`
	NewSummaries    int    `json:"new_summaries"`
	Errors          int    `json:"errors"`
}

// SyncResult is the aggregate report of one sync run. It is the only thing
// a run returns; failures inside the run surface as counts, never as errors.
type SyncResult struct {
	TotalMessages int                 `json:"total_messages"`
	NewSummaries  int                 `json:"new_summaries"`
	TotalErrors   int                 `json:"total_errors"`
	Accounts      []AccountSyncResult `json:"accounts"`
}

// AddAccount folds one account's outcome into the aggregate
func (r *SyncResult) AddAccount(acc AccountSyncResult) {
	r.TotalMessages += acc.MessagesFetched
	r.NewSummaries += acc.NewSummaries
	r.TotalErrors += acc.Errors
	r.Accounts = append(r.Accounts, acc)
}
