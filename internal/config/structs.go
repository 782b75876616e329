package config

import (
	"github.com/olatundun-care/sitecms/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// DB implements database settings.
type DB struct {
	Driver   string // sqlite (default), mysql or postgres
	Path     string // database file path, sqlite only
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Extras   string // extra DSN parameters
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
