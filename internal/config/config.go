package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file::memory:?cache=shared"`

	Admin  Admin  `envPrefix:"ADMIN_"`
	Paypal Paypal `envPrefix:"PAYPAL_"`
}

// Admin holds the credentials for the single admin account and the secret the
// admin API tokens are signed with.
type Admin struct {
	Username    string `env:"USERNAME" envDefault:"admin"`
	Password    string `env:"PASSWORD" envDefault:"admin"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTLHrs int    `env:"TOKEN_TTL_HOURS" envDefault:"12"`
}

// Paypal configures the REST client used to verify submitted payment
// outcomes. Verification is skipped entirely when ClientID is empty.
type Paypal struct {
	BaseApiURL   string `env:"BASE_API_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
