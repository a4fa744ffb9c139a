package configloader

import "github.com/yaklabco/docgate/pkg/config"

// merge applies layer on top of base and returns the result. base is not
// modified. Only fields the layer sets are applied; validateLayer must
// have accepted the layer first.
func merge(base *config.Config, layer *Layer) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}

	result := *base
	if layer == nil {
		return &result
	}

	if layer.Format != nil {
		result.Format, _ = config.ParseFormat(*layer.Format)
	}
	if layer.Color != nil {
		result.Color, _ = config.ParseColorMode(*layer.Color)
	}
	if layer.Suggestions != nil {
		result.Suggestions = *layer.Suggestions
	}
	if layer.ResolveAnchors != nil {
		result.ResolveAnchors = *layer.ResolveAnchors
	}

	return &result
}
