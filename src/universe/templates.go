package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

var defaultTemplates = []Template{
	{
		"testSample1",
		"the test sample with 3 stable patterns",
		[][]int{
			{1, 1}, {1, 2},
			{2, 1}, {2, 2},
			{3, 3},
			{4, 2},
			{4, 3},
			{5, 3},
		},
	},
	{
		"glider",
		"moves by (1,1) every 4 generations",
		[][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
	{
		"blinker",
		"period 2 oscillator",
		[][]int{{1, 0}, {1, 1}, {1, 2}},
	},
	{
		"block",
		"still life",
		[][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	{
		"r-pentomino",
		"methuselah, stabilizes after 1103 generations",
		[][]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	{
		"acorn",
		"methuselah, stabilizes after 5206 generations",
		[][]int{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}},
	},
	{
		"gosper-gun",
		"Gosper glider gun, emits a glider every 30 generations",
		[][]int{
			{24, 0},
			{22, 1}, {24, 1},
			{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
			{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
			{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
			{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
			{10, 6}, {16, 6}, {24, 6},
			{11, 7}, {15, 7},
			{12, 8}, {13, 8},
		},
	},
}

//DefaultTemplates returns the built-in templates
func DefaultTemplates() []Template {
	res := make([]Template, len(defaultTemplates))
	copy(res, defaultTemplates)
	return res
}
