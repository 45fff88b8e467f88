package config

// SetUserHomeDirForTest overrides the home directory resolver.
// It returns a restore function to reset the original resolver.
func SetUserHomeDirForTest(fn func() (string, error)) func() {
	orig := userHomeDir
	userHomeDir = fn
	return func() {
		userHomeDir = orig
	}
}

// SetLookupEnvForTest replaces environment lookups with values from env.
// It returns a restore function.
func SetLookupEnvForTest(env map[string]string) func() {
	orig := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return func() {
		lookupEnv = orig
	}
}
