package reconciler

//go:generate moq -pkg mocks -out ./mocks/ledger_index_mock.go . LedgerIndex
//go:generate moq -pkg mocks -out ./mocks/pending_pool_mock.go . PendingPool
//go:generate moq -pkg mocks -out ./mocks/status_reconciler_mock.go . StatusReconciler
