package domain

// serviceNames maps service slugs to their display names, mirroring the
// request form catalog of the kelurahan office.
var serviceNames = map[string]string{
	"ktp":       "KTP",
	"kk":        "Kartu Keluarga",
	"akta":      "Akta Kelahiran",
	"skck":      "SKCK",
	"domisili":  "Surat Domisili",
	"usaha":     "Surat Usaha",
	"kendaraan": "Surat Kendaraan",
	"lainnya":   "Lainnya",
}

// ServiceTypeName resolves a slug to its display name, falling back to
// the catch-all "Lainnya" entry for unknown slugs.
func ServiceTypeName(slug string) string {
	if name, ok := serviceNames[slug]; ok {
		return name
	}
	return serviceNames["lainnya"]
}

// KnownServiceType reports whether the slug is part of the catalog.
func KnownServiceType(slug string) bool {
	_, ok := serviceNames[slug]
	return ok
}

// ServiceTypes returns the slug catalog.
func ServiceTypes() map[string]string {
	out := make(map[string]string, len(serviceNames))
	for k, v := range serviceNames {
		out[k] = v
	}
	return out
}
