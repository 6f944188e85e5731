package directory

import (
	"sort"
	"strings"

	dto "subname-minter/internal/adapter/directory/dto"
	"subname-minter/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

func toCreateRequest(req entity.CreateSubnameRequest) dto.CreateSubnameRequest {
	out := dto.CreateSubnameRequest{
		Label:      req.Label,
		ParentName: req.Parent,
		Owner:      req.Owner.Hex(),
	}

	keys := make([]string, 0, len(req.Texts))
	for k := range req.Texts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Texts = append(out.Texts, dto.TextRecordRaw{Key: k, Value: req.Texts[k]})
	}

	coins := make([]int, 0, len(req.Addresses))
	for c := range req.Addresses {
		coins = append(coins, c)
	}
	sort.Ints(coins)
	for _, c := range coins {
		out.Addresses = append(out.Addresses, dto.AddressRecordRaw{Coin: c, Value: req.Addresses[c]})
	}

	keys = keys[:0]
	for k := range req.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out.Metadata = append(out.Metadata, dto.MetadataRaw{Key: k, Value: req.Metadata[k]})
	}
	return out
}

func toDomainSubname(raw dto.SubnameRaw) entity.SubnameRecord {
	rec := entity.SubnameRecord{
		FullName: raw.FullName,
		Label:    raw.Label,
		Parent:   raw.ParentName,
	}
	if rec.FullName == "" && rec.Label != "" && rec.Parent != "" {
		rec.FullName = rec.Label + "." + rec.Parent
	}
	if rec.Label == "" && rec.FullName != "" {
		rec.Label, _, _ = strings.Cut(rec.FullName, ".")
	}
	if common.IsHexAddress(raw.Owner) {
		rec.Owner = common.HexToAddress(raw.Owner)
	}
	if len(raw.Texts) > 0 {
		rec.Texts = make(map[string]string, len(raw.Texts))
		for _, t := range raw.Texts {
			rec.Texts[t.Key] = t.Value
		}
	}
	if len(raw.Addresses) > 0 {
		rec.Addresses = make(map[int]string, len(raw.Addresses))
		for _, a := range raw.Addresses {
			rec.Addresses[a.Coin] = a.Value
		}
	}
	return rec
}

func toDomainPage(raw dto.SubnamePageRaw) entity.SubnamePage {
	page := entity.SubnamePage{
		Items: make([]entity.SubnameRecord, 0, len(raw.Items)),
		Page:  raw.Page,
		Size:  raw.Size,
		Total: raw.Total,
	}
	for _, item := range raw.Items {
		page.Items = append(page.Items, toDomainSubname(item))
	}
	return page
}
