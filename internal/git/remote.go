package git

// GetRemote returns the default remote name (usually "origin")
func GetRemote() string {
	lines, err := RunGitCommandLines("remote")
	if err != nil || len(lines) == 0 || lines[0] == "" {
		return "origin"
	}
	for _, name := range lines {
		if name == "origin" {
			return "origin"
		}
	}
	return lines[0]
}

// HasRemote reports whether the repository has any remote configured
func HasRemote() bool {
	remote, err := RunGitCommand("remote")
	return err == nil && remote != ""
}
