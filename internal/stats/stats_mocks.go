package stats

//go:generate moq -pkg mocks -out ./mocks/stats_reader_mock.go . StatsReader
//go:generate moq -pkg mocks -out ./mocks/summary_provider_mock.go . SummaryProvider
