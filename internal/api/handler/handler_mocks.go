package handler

//go:generate moq -pkg mocks -out ./mocks/submitter_mock.go . Submitter
//go:generate moq -pkg mocks -out ./mocks/reconciler_mock.go . Reconciler
//go:generate moq -pkg mocks -out ./mocks/tracker_mock.go . Tracker
//go:generate moq -pkg mocks -out ./mocks/aggregator_mock.go . Aggregator
//go:generate moq -pkg mocks -out ./mocks/node_client_mock.go . NodeClient
