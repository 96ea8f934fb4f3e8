package publish

import "errors"

// ErrMissingToken indicates no GitHub token was configured (GITHUB_TOKEN).
var ErrMissingToken = errors.New("GITHUB_TOKEN is not set")
