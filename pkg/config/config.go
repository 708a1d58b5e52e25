package config

// Log configures the process logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"` // -4 debug, 0 info, 4 warn, 8 error
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[bankaccount]"`
}

// Account configures the account opened by a teller session.
type Account struct {
	Currency string `envconfig:"CURRENCY" default:"GBP" validate:"required,oneof=USD EUR GBP"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development" validate:"required"`
	Log     *Log     `envconfig:"LOG"`
	Account *Account `envconfig:"ACCOUNT"`
}
