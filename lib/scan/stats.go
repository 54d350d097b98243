package scan

type Stats struct {
	FilesSeen      int
	FilesEligible  int
	FilesAnnotated int
	FilesFailed    int

	LinesRead        int
	LinesParsed      int
	LinesFiltered    int
	LinesOutOfWindow int
	LinesCounted     int
	BadTimestamps    int
}
