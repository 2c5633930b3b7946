package store

//go:generate moq -pkg mocks -out ./mocks/transaction_store_mock.go . TransactionStore
