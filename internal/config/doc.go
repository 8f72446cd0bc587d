// Package config manages the configuration of the rango-query tool.
//
// The config package loads and validates configuration from environment
// variables. The driver packages never read the environment themselves;
// all of it is centralized here and turned into a connector.DataSource.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
//	ds, err := cfg.DataSource()
//
// # Environment Variables
//
//	RANGO_ENDPOINT     - server base URL (default: http://localhost:8529)
//	RANGO_DATABASE     - database to run queries against (default: _system)
//	RANGO_TIMEOUT      - per-request timeout (default: 30s)
//	RANGO_AUTH_METHOD  - none, basic, or jwt (default: basic)
//	RANGO_USERNAME     - user for basic/jwt auth (default: root)
//	RANGO_PASSWORD     - password for basic/jwt auth (default: empty)
//	RANGO_BATCH_SIZE   - cursor batch size, 0 for the server default
//	RANGO_COUNT        - request result counts (default: false)
package config
