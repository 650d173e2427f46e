package git

import (
	"fmt"
	"time"
)

// GetRevision returns the commit SHA a revision points at
func GetRevision(rev string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	hash, err := resolveRefHash(repo, rev)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// GetCommitDate returns the author date of the tip commit of a revision
func GetCommitDate(rev string) (time.Time, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return time.Time{}, err
	}

	hash, err := resolveRefHash(repo, rev)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve reference: %w", err)
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get commit: %w", err)
	}

	return commit.Author.When, nil
}

// GetCommitSubject returns the subject line of the tip commit of a revision
func GetCommitSubject(rev string) (string, error) {
	repo, err := GetDefaultRepo()
	if err != nil {
		return "", err
	}

	hash, err := resolveRefHash(repo, rev)
	if err != nil {
		return "", fmt.Errorf("failed to resolve reference: %w", err)
	}

	goGitMu.Lock()
	defer goGitMu.Unlock()

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return "", fmt.Errorf("failed to get commit: %w", err)
	}

	subject := commit.Message
	for i, ch := range subject {
		if ch == '\n' {
			subject = subject[:i]
			break
		}
	}
	return subject, nil
}
