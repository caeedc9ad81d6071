package bootstrap

// JWTEnv has no defaults: the process refuses to start without an explicit
// signing secret, issuer and audience.
type JWTEnv struct {
	Secret   string `env:"SECRET"`
	Issuer   string `env:"ISSUER"`
	Audience string `env:"AUDIENCE"`
}
