package proc

// UnknownName is the display name reported when neither name source
// resolves. A record with an unresolvable name is still valid.
const UnknownName = "<unknown>"

// resolveName tries the short base name first and the full image path
// second. Name resolution failing on both tiers never fails the
// inspection; the sentinel is returned instead.
func resolveName(short, full func() (string, error)) string {
	if name, err := short(); err == nil && name != "" {
		return name
	}
	if name, err := full(); err == nil && name != "" {
		return name
	}
	return UnknownName
}
