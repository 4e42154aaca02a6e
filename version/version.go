package version

// Name for this
const Name string = "colortool"

// Version for this
var Version = "dev"

// Revision for this
var Revision = "HEAD"
