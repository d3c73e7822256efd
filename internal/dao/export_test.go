package dao

// Dir returns the directory a file-backed DAO writes into.
func Dir(d ArtifactDAO) string {
	return d.(*fileArtifactDAO).dir
}
