package contract

type IRandomGenerator interface {
	// GeneratePassword produces a random password of length n from a mixed
	// letter/digit/symbol charset.
	GeneratePassword(n int) (string, error)
}
