package camera

// Disclosures is the host application's registry of declared usage strings.
type Disclosures interface {
	Lookup(key string) (string, bool)
}

// Disclosure keys, in the order they are checked.
const (
	DisclosureLibraryAdd = "NSPhotoLibraryAddUsageDescription"
	DisclosureLibrary    = "NSPhotoLibraryUsageDescription"
	DisclosureCamera     = "NSCameraUsageDescription"
)

type requiredDisclosure struct {
	key    string
	docURL string
}

var requiredDisclosures = []requiredDisclosure{
	{DisclosureLibraryAdd, "https://developer.apple.com/documentation/bundleresources/information_property_list/nsphotolibraryaddusagedescription"},
	{DisclosureLibrary, "https://developer.apple.com/documentation/bundleresources/information_property_list/nsphotolibraryusagedescription"},
	{DisclosureCamera, "https://developer.apple.com/documentation/bundleresources/information_property_list/nscamerausagedescription"},
}

// RequiredDisclosures lists the keys CheckPrerequisites looks for.
func RequiredDisclosures() []string {
	keys := make([]string, 0, len(requiredDisclosures))
	for _, d := range requiredDisclosures {
		keys = append(keys, d.key)
	}
	return keys
}

// CheckPrerequisites returns a *PrerequisiteError for the first missing
// disclosure, or nil. A nil registry means the host declares nothing.
func CheckPrerequisites(d Disclosures) error {
	for _, req := range requiredDisclosures {
		if d != nil {
			if _, ok := d.Lookup(req.key); ok {
				continue
			}
		}
		return &PrerequisiteError{Key: req.key, DocURL: req.docURL}
	}
	return nil
}

// DisclosureMap is a Disclosures backed by a plain map.
type DisclosureMap map[string]string

func (m DisclosureMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
