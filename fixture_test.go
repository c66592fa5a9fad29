package syukujitsu

// fixtureRows is an excerpt of the Cabinet Office list, "休日" rows included.
var fixtureRows = []Row{
	// 2015
	{"2015/1/1", "元日"},
	{"2015/1/12", "成人の日"},
	{"2015/2/11", "建国記念の日"},
	{"2015/3/21", "春分の日"},
	{"2015/4/29", "昭和の日"},
	{"2015/5/3", "憲法記念日"},
	{"2015/5/4", "みどりの日"},
	{"2015/5/5", "こどもの日"},
	{"2015/5/6", "休日"},
	{"2015/7/20", "海の日"},
	{"2015/9/21", "敬老の日"},
	{"2015/9/22", "休日"},
	{"2015/9/23", "秋分の日"},
	{"2015/10/12", "体育の日"},
	{"2015/11/3", "文化の日"},
	{"2015/11/23", "勤労感謝の日"},
	{"2015/12/23", "天皇誕生日"},

	// 2019
	{"2019/1/1", "元日"},
	{"2019/1/14", "成人の日"},
	{"2019/2/11", "建国記念の日"},
	{"2019/3/21", "春分の日"},
	{"2019/4/29", "昭和の日"},
	{"2019/4/30", "休日"},
	{"2019/5/1", "休日（祝日扱い）"},
	{"2019/5/2", "休日"},
	{"2019/5/3", "憲法記念日"},
	{"2019/5/4", "みどりの日"},
	{"2019/5/5", "こどもの日"},
	{"2019/5/6", "休日"},
	{"2019/7/15", "海の日"},
	{"2019/8/11", "山の日"},
	{"2019/8/12", "休日"},
	{"2019/9/16", "敬老の日"},
	{"2019/9/23", "秋分の日"},
	{"2019/10/14", "体育の日（スポーツの日）"},
	{"2019/10/22", "休日（祝日扱い）"},
	{"2019/11/3", "文化の日"},
	{"2019/11/4", "休日"},
	{"2019/11/23", "勤労感謝の日"},

	// 2020
	{"2020/1/1", "元日"},
	{"2020/1/13", "成人の日"},
	{"2020/2/11", "建国記念の日"},
	{"2020/2/23", "天皇誕生日"},
	{"2020/2/24", "休日"},
	{"2020/3/20", "春分の日"},
	{"2020/4/29", "昭和の日"},
	{"2020/5/3", "憲法記念日"},
	{"2020/5/4", "みどりの日"},
	{"2020/5/5", "こどもの日"},
	{"2020/5/6", "休日"},
	{"2020/7/23", "海の日"},
	{"2020/7/24", "スポーツの日"},
	{"2020/8/10", "山の日"},
	{"2020/9/21", "敬老の日"},
	{"2020/9/22", "秋分の日"},
	{"2020/11/3", "文化の日"},
	{"2020/11/23", "勤労感謝の日"},

	// 2021
	{"2021/1/1", "元日"},
	{"2021/1/11", "成人の日"},
	{"2021/2/11", "建国記念の日"},
	{"2021/2/23", "天皇誕生日"},
	{"2021/3/20", "春分の日"},
	{"2021/4/29", "昭和の日"},
	{"2021/5/3", "憲法記念日"},
	{"2021/5/4", "みどりの日"},
	{"2021/5/5", "こどもの日"},
	{"2021/7/22", "海の日"},
	{"2021/7/23", "スポーツの日"},
	{"2021/8/8", "山の日"},
	{"2021/8/9", "休日"},
	{"2021/9/20", "敬老の日"},
	{"2021/9/23", "秋分の日"},
	{"2021/11/3", "文化の日"},
	{"2021/11/23", "勤労感謝の日"},

	// 2022
	{"2022/1/1", "元日"},
	{"2022/1/10", "成人の日"},
	{"2022/2/11", "建国記念の日"},
	{"2022/2/23", "天皇誕生日"},
	{"2022/3/21", "春分の日"},
	{"2022/4/29", "昭和の日"},
	{"2022/5/3", "憲法記念日"},
	{"2022/5/4", "みどりの日"},
	{"2022/5/5", "こどもの日"},
	{"2022/7/18", "海の日"},
	{"2022/8/11", "山の日"},
	{"2022/9/19", "敬老の日"},
	{"2022/9/23", "秋分の日"},
	{"2022/10/10", "スポーツの日"},
	{"2022/11/3", "文化の日"},
	{"2022/11/23", "勤労感謝の日"},

	// 2023
	{"2023/1/1", "元日"},
	{"2023/1/2", "休日"},
	{"2023/1/9", "成人の日"},
	{"2023/2/11", "建国記念の日"},
	{"2023/2/23", "天皇誕生日"},
	{"2023/3/21", "春分の日"},
	{"2023/4/29", "昭和の日"},
	{"2023/5/3", "憲法記念日"},
	{"2023/5/4", "みどりの日"},
	{"2023/5/5", "こどもの日"},
	{"2023/7/17", "海の日"},
	{"2023/8/11", "山の日"},
	{"2023/9/18", "敬老の日"},
	{"2023/9/23", "秋分の日"},
	{"2023/10/9", "スポーツの日"},
	{"2023/11/3", "文化の日"},
	{"2023/11/23", "勤労感謝の日"},
}

func fixture() *Calendar { return MustNew(fixtureRows) }
