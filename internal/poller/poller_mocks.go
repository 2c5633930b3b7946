package poller

//go:generate moq -pkg mocks -out ./mocks/reconciler_mock.go . Reconciler
//go:generate moq -pkg mocks -out ./mocks/status_store_mock.go . StatusStore
//go:generate moq -pkg mocks -out ./mocks/publisher_mock.go . Publisher
