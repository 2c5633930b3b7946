package submitter

//go:generate moq -pkg mocks -out ./mocks/node_client_mock.go . NodeClient
