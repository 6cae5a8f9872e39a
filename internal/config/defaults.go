package config

import "github.com/shardvault/shardvault/internal/sharecrypto"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.shardvault",
		Split: SplitConfig{
			DefaultK:        3,
			DefaultN:        5,
			DefaultEncoding: "base64url",
		},
		Crypto: CryptoConfig{
			MemKiB:      sharecrypto.DefaultMemKiB,
			Time:        sharecrypto.DefaultTime,
			Parallelism: sharecrypto.DefaultParallelism,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.shardvault/shardvault.log",
		},
	}
}
