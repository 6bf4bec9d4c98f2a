package errors

import "fmt"

// Environment Errors
func EnvNotInitialized(startDir string) *UmbrelError {
	return NewWithDetails(ErrEnvNotInitialized,
		"Not an umbrel-dev environment",
		fmt.Sprintf("No %q marker found in %s or any parent directory. Run 'umbrel-dev init' in an empty directory first.", ".umbrel-dev", startDir))
}

func EnvNotEmpty(dir string) *UmbrelError {
	return NewWithDetails(ErrEnvNotEmpty,
		"Directory is not empty",
		fmt.Sprintf("'umbrel-dev init' must run in an empty directory, but %s contains files", dir))
}

func EnvLocked(root string, cause error) *UmbrelError {
	return WrapWithDetails(ErrEnvLocked,
		"Environment is in use by another umbrel-dev invocation",
		fmt.Sprintf("Root: %s", root), cause)
}

// Host Dependency Errors
func DependencyMissing(binary, guidance string) *UmbrelError {
	return NewWithDetails(ErrDependencyMissing,
		fmt.Sprintf("Required dependency %q was not found on your PATH", binary),
		guidance)
}

// Argument Errors
func ArgMissing(command, arg string) *UmbrelError {
	return NewWithDetails(ErrArgMissing,
		fmt.Sprintf("Command %q requires a %s argument", command, arg),
		fmt.Sprintf("Usage: umbrel-dev %s <%s>", command, arg))
}

// Git Errors
func GitCloneFailed(repo string, cause error) *UmbrelError {
	return WrapWithDetails(ErrGitCloneFailed, "Failed to clone repository",
		fmt.Sprintf("Repository: %s", repo), cause)
}

// VM Errors
func VMCommandFailed(description string, cause error) *UmbrelError {
	return WrapWithDetails(ErrVMCommandFailed, "VM command failed",
		description, cause)
}

// Configuration Errors
func ConfigParseError(cause error) *UmbrelError {
	return Wrap(ErrConfigParse, "Failed to parse configuration", cause)
}

func ComposeParseError(path string, cause error) *UmbrelError {
	return WrapWithDetails(ErrComposeParse, "Failed to parse compose file",
		fmt.Sprintf("Path: %s", path), cause)
}

func TemplateRenderError(name string, cause error) *UmbrelError {
	return WrapWithDetails(ErrTemplateRender, "Failed to render template",
		fmt.Sprintf("Template: %s", name), cause)
}

// File/IO Errors
func FileWriteError(path string, cause error) *UmbrelError {
	return WrapWithDetails(ErrFileWrite, "Failed to write file",
		fmt.Sprintf("Path: %s", path), cause)
}
