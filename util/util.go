package util

// Version of the planx server and command line tools
const Version = "0.1.0"
