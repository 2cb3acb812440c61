package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	TransferBillRepoName RepositoryName = "transfer_bill"
)
