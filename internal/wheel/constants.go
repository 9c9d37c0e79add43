package wheel

// PocketCount is the number of pockets on a European wheel (0-36).
const PocketCount = 37

// MaxNumber is the highest pocket number.
const MaxNumber = PocketCount - 1

// redNumbers is the fixed partition of 1-36 into the 18 red pockets;
// everything else non-zero is black.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}
