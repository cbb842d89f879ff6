package internal

// Version is the program version, filled in from git by the build
var Version = "dev"
