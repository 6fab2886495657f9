package app

// MinRacersToStart defines the minimum number of registered competitors required to start a race.
const MinRacersToStart = 1

// ResultsIssuer is the issuer claim of signed race results.
const ResultsIssuer = "kartrace"
