package domain

// Attribute names of the per-document metadata set.
const (
	AttrURL              = "url"
	AttrIdentifier       = "identifier"
	AttrGenerationDate   = "generationDate"
	AttrResponsibleParty = "responsibleParty"
	AttrContact          = "contact"
)

// MetadataAttributes lists the attribute set in its fixed column order.
var MetadataAttributes = []string{
	AttrURL,
	AttrIdentifier,
	AttrGenerationDate,
	AttrResponsibleParty,
	AttrContact,
}

// Attributes is the named string metadata attached to one imported document.
type Attributes map[string]string

// SaveAttributes externalizes the named attributes into their own record
// before a row merge can discard them. Names absent from attrs are recorded
// as MissingMarker so every saved record has the full column set.
func SaveAttributes(names []string, attrs Attributes) Attributes {
	saved := make(Attributes, len(names))
	for _, name := range names {
		if v, ok := attrs[name]; ok {
			saved[name] = v
		} else {
			saved[name] = MissingMarker
		}
	}
	return saved
}

// StripAttributes removes the named attributes from attrs, leaving it
// otherwise unchanged.
func StripAttributes(names []string, attrs Attributes) {
	for _, name := range names {
		delete(attrs, name)
	}
}

// MetadataRow shapes a saved attribute record into the metadata table row
// for one requested site.
func MetadataRow(featureID string, saved Attributes) SiteMetadata {
	return SiteMetadata{
		Site:             featureID,
		URL:              saved[AttrURL],
		Identifier:       saved[AttrIdentifier],
		GenerationDate:   saved[AttrGenerationDate],
		ResponsibleParty: saved[AttrResponsibleParty],
		Contact:          saved[AttrContact],
	}
}
