package config

// ManagerInterface defines configuration management operations
type ManagerInterface interface {
	Path() string
	Load() (*Config, error)
	Save(*Config) error
}

// Ensure Manager implements ManagerInterface
var _ ManagerInterface = (*Manager)(nil)
