package app

// Options holds the per-run input for the pipeline. It is built once by
// the cli layer and never mutated afterwards.
type Options struct {
	// Username - github user whose starred repositories are listed. Required.
	Username string

	// Token - github api token. Optional for fetching, required when Repo is set.
	Token string

	// Repo - repository owned by Username that the generated readme is pushed to. Optional.
	Repo string

	// Message - commit message used when pushing the readme.
	Message string

	// Sort - requests a sorted language index. Accepted but not implemented yet.
	Sort bool
}

// Validate checks cross-field invariants. The first violation found is
// returned; fields themselves are independent, so the check order carries
// no meaning.
func (o Options) Validate() error {
	if o.Username == "" {
		return InvalidRequestError("username cannot be empty")
	}
	if o.Repo != "" && o.Token == "" {
		return InvalidRequestError("token is required when repo is set")
	}

	return nil
}
