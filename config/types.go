package config

type ContextSelection struct {
	Name string
}

const (
	ContextFileEnvVar         = "JENKVIEW_CONTEXTS_FILE"
	DefaultContextCatalogPath = "~/.jenkview/contexts.yaml"
)

type ContextCatalog struct {
	Contexts   []Context `yaml:"contexts"`
	CurrentCtx string    `yaml:"current-ctx"`
}

type Context struct {
	Name        string            `yaml:"name"`
	Server      Server            `yaml:"server"`
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

// Server describes how to reach one Jenkins controller through its CLI jar.
type Server struct {
	URL     string `yaml:"url"`
	CLIJar  string `yaml:"cli-jar"`
	JavaBin string `yaml:"java-bin,omitempty"`
	Auth    *Auth  `yaml:"auth,omitempty"`
}

// Auth holds CLI credentials. The API token itself never lives in the
// catalog; APITokenEnv names the environment variable that carries it.
type Auth struct {
	User        string `yaml:"user,omitempty"`
	APITokenEnv string `yaml:"api-token-env,omitempty"`
	SSHKeyFile  string `yaml:"ssh-key-file,omitempty"`
}
