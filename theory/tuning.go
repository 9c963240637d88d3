package theory

const NumStrings = 6

// StandardTuning holds open-string pitch classes, low E (string 0) to high E.
var StandardTuning = [NumStrings]PitchClass{4, 9, 2, 7, 11, 4}
