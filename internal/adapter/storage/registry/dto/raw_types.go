package registry_dto

// EnvironmentRaw is the environment label as written in the registry file.
type EnvironmentRaw string

// Known environment labels.
const (
	EnvironmentMainnetRaw EnvironmentRaw = "mainnet"
	EnvironmentTestnetRaw EnvironmentRaw = "testnet"
)

// FileRaw is the top-level document of the registry file.
type FileRaw struct {
	Networks []NetworkRaw `yaml:"networks"`
}

// NetworkRaw is one network entry as read from the registry file.
type NetworkRaw struct {
	Identifier       string         `yaml:"identifier"`
	Name             string         `yaml:"name"`
	ChainID          uint64         `yaml:"chainId"`
	Environment      EnvironmentRaw `yaml:"environment"`
	RPC              []string       `yaml:"rpc"`
	BlockExplorerURL string         `yaml:"blockExplorerUrl,omitempty"`
	Contracts        ContractsRaw   `yaml:"contracts"`
}

// ContractsRaw holds hex-encoded contract addresses.
type ContractsRaw struct {
	Registry       string `yaml:"registry"`
	Resolver       string `yaml:"resolver"`
	MintController string `yaml:"mintController"`
}
