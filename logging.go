package picowire

import "picowire/internal/logging"

// InitLogging wires the process-wide diagnostic log from cfg: a file
// sink receiving every level and a console sink echoing entries at or
// above the configured console level. The first call wins and the log
// is never torn down; later calls change nothing. A nil cfg applies
// defaults.
func InitLogging(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	level, err := logging.ParseLevel(cfg.ConsoleLevel)
	if err != nil {
		return err
	}
	return logging.Setup(cfg.LogFile, level)
}
