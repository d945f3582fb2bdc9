package cfgloader

// Options holds configuration options for Load and MustLoad.
type Options struct {
	// Dir is the directory holding the ${ENVIRONMENT}.yaml files. Default is "./config".
	Dir string
	// Environment overrides the ENVIRONMENT variable.
	Environment string
	// EnvFile is the dotenv file loaded before reading ENVIRONMENT. Default is ".env".
	EnvFile string
}

// Option is a functional option for configuring loading.
type Option func(*Options)

// WithDir sets the directory the YAML files are read from.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithEnvironment selects the environment instead of reading ENVIRONMENT.
func WithEnvironment(env string) Option {
	return func(o *Options) {
		o.Environment = env
	}
}

// WithEnvFile sets the dotenv file loaded before the config is read.
func WithEnvFile(path string) Option {
	return func(o *Options) {
		o.EnvFile = path
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		Dir:     "./config",
		EnvFile: ".env",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
