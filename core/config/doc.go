// Package config provides configuration management for unique-checker.
//
// It loads an optional .env file, then reads environment variables through
// Viper. Defaults live next to each field as `default:"..."` struct tags and
// are registered reflectively, so every key is also reachable from the
// environment (TRADE_THROTTLE_MS maps to trade.throttle_ms).
//
// # Configuration Structure
//
//   - Server: HTTP control server (host, port, API key)
//   - Log: logging level and format
//   - Database: store driver and location (sqlite file by default)
//   - Trade: trade API endpoint, league, throttle and retry tuning
//   - Player: default username and the identity file location
//   - Storage: S3/MinIO credentials and bucket for snapshots
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Trade.League)
package config
