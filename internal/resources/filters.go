package resources

import "strings"

// manualSites are the known manual repositories accepted for the manuals
// category regardless of manufacturer.
var manualSites = []string{
	"manualslib.com",
	"repairclinic.com",
	"appliancepartspros.com",
	"partstown.com",
	"searspartsdirect.com",
	"manualzilla.com",
	"manualscat.com",
	"manualsplace.com",
}

// partsSites are accepted parts-supplier storefronts.
var partsSites = []string{
	"repairclinic.com",
	"appliancepartspros.com",
	"partstown.com",
	"searspartsdirect.com",
	"supplyhouse.com",
	"grainger.com",
	"ferguson.com",
}

// videoSites host service and teardown videos.
var videoSites = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
}

// trainingSites host trade training material.
var trainingSites = []string{
	"hvacrschool.com",
	"achrnews.com",
	"escogroup.org",
	"ahrinet.org",
	"rses.org",
}

// officialDomains maps a manufacturer (lowercase) to its web properties.
// Results from these domains outrank third-party repositories.
var officialDomains = map[string][]string{
	"carrier":      {"carrier.com", "carrier.ca"},
	"trane":        {"trane.com", "tranetechnologies.com"},
	"lennox":       {"lennox.com", "lennoxinternational.com"},
	"york":         {"york.com", "johnsoncontrols.com"},
	"rheem":        {"rheem.com", "rheemproducts.com"},
	"goodman":      {"goodman-mfg.com", "goodmanmfg.com"},
	"coleman":      {"colemanac.com", "coleman-hvac.com"},
	"heil":         {"heil-hvac.com"},
	"payne":        {"payne.com"},
	"generac":      {"generac.com", "generacpower.com"},
	"kohler":       {"kohler.com", "kohlerpower.com", "kohlerengines.com"},
	"briggs":       {"briggsandstratton.com"},
	"honda":        {"honda.com", "hondaengines.com"},
	"champion":     {"championpowerequipment.com"},
	"westinghouse": {"westinghouseoutdoorpower.com"},
}

// IsOfficialSite reports whether the URL belongs to the manufacturer's own
// web properties.
func IsOfficialSite(url, manufacturer string) bool {
	domains := officialDomains[strings.ToLower(strings.TrimSpace(manufacturer))]
	return containsAnySite(url, domains)
}

// IsManualSite reports whether the URL belongs to a known manual repository.
func IsManualSite(url string) bool {
	return containsAnySite(url, manualSites)
}

// IsPDF reports whether the URL points at a PDF document.
func IsPDF(url string) bool {
	return strings.Contains(strings.ToLower(url), ".pdf")
}

func containsAnySite(url string, sites []string) bool {
	lower := strings.ToLower(url)
	for _, s := range sites {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// keepVideo accepts video-hosting URLs or pages self-describing as video.
func keepVideo(url, manufacturer string) bool {
	return containsAnySite(url, videoSites) || strings.Contains(strings.ToLower(url), "video")
}

// keepManual accepts PDFs, known manual repositories, official manufacturer
// pages, and URLs self-describing as manuals.
func keepManual(url, manufacturer string) bool {
	return IsPDF(url) || IsManualSite(url) || IsOfficialSite(url, manufacturer) ||
		strings.Contains(strings.ToLower(url), "manual")
}

// keepParts accepts parts storefronts, official manufacturer pages, and URLs
// self-describing as parts listings.
func keepParts(url, manufacturer string) bool {
	return containsAnySite(url, partsSites) || IsOfficialSite(url, manufacturer) ||
		strings.Contains(strings.ToLower(url), "parts")
}

// keepTraining accepts trade training sites and URLs self-describing as
// training or certification material.
func keepTraining(url, manufacturer string) bool {
	lower := strings.ToLower(url)
	return containsAnySite(url, trainingSites) ||
		strings.Contains(lower, "training") || strings.Contains(lower, "certification")
}
