package chainlist

import (
	"strings"

	dto "subname-minter/internal/adapter/storage/chainlist/dto"
	"subname-minter/internal/domain/entity"

	"go.uber.org/zap"
)

// toRPCsByChain keeps the usable RPC URLs of the wanted chains. URLs that need an API key
// substituted into them are skipped.
func toRPCsByChain(rawChains []dto.ChainRaw, wanted map[uint64]struct{}, logger *zap.Logger) map[uint64][]entity.RPCURL {
	out := make(map[uint64][]entity.RPCURL, len(wanted))
	for _, raw := range rawChains {
		if raw.ChainID <= 0 {
			continue
		}
		chainID := uint64(raw.ChainID)
		if _, ok := wanted[chainID]; !ok {
			continue
		}
		if len(raw.RedFlags) > 0 {
			logger.Warn("Skipping chain with red flags",
				zap.Uint64("chainId", chainID), zap.Strings("redFlags", raw.RedFlags))
			continue
		}

		for _, rpcStr := range raw.RPC {
			if strings.Contains(rpcStr, "${") {
				continue
			}
			rpcURL, err := entity.NewRPCURL(rpcStr)
			if err != nil {
				logger.Debug("Skipping invalid RPC URL during mapping",
					zap.String("rawUrl", rpcStr),
					zap.Uint64("chainId", chainID),
					zap.Error(err))
				continue
			}
			out[chainID] = append(out[chainID], rpcURL)
		}
	}
	return out
}
