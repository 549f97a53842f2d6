// FILE: internal/hook/registry.go
package hook

import "featuregate-be/internal/dto"

// Registry holds the hook pair for every operation, one typed field per Op
// so hook signatures stay concrete instead of variadic any-tuples. A zero
// Registry means no interception anywhere. Services own their Registry for
// their lifetime; there is no ambient global table.
type Registry struct {
	CreateFeature     Hooks[dto.CreateFeatureRequest, *dto.FeatureResponse]
	ListFeatures      Hooks[dto.ListFeaturesRequest, []*dto.FeatureResponse]
	UpdateFeature     Hooks[dto.UpdateFeatureRequest, *dto.FeatureResponse]
	DeleteFeature     Hooks[dto.DeleteFeatureRequest, *dto.FeatureResponse]
	ToggleFeature     Hooks[dto.ToggleFeatureRequest, *dto.FeatureResponse]
	SetFlag           Hooks[dto.SetFlagRequest, *dto.FlagResponse]
	RemoveFlag        Hooks[dto.RemoveFlagRequest, *dto.RemoveFlagResponse]
	ListFlags         Hooks[dto.ListFlagsRequest, []*dto.FlagResponse]
	AvailableFeatures Hooks[dto.AvailableFeaturesRequest, []*dto.FlagResponse]
}
