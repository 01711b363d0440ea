package config

// Base application details
const AppName = "coral"
const ConfigDirName = "coral"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "coral.log"

// Editing defaults. These could be moved to NewDefaultConfig(), keeping here for now.
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultMaxHistory = 10000
const SystemClipboard = true

// DefaultJumpAlphabet is the label alphabet used by jump movements,
// ordered by home-row reachability.
const DefaultJumpAlphabet = "asdfjkluiowernm"
