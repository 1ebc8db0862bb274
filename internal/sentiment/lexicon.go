package sentiment

// term 是词典中的一个条目，weight 取值 -5..5
type term struct {
	weight  float64
	emotion Emotion
}

// strongWeight 及以上的词单独出现即可视为高置信度信号
const strongWeight = 4

// lexicon 的键为小写词或以空格连接的短语，短语最长三个词
var lexicon = map[string]term{
	// joy
	"happy":        {3, Joy},
	"happier":      {3, Joy},
	"joy":          {3, Joy},
	"joyful":       {3, Joy},
	"glad":         {2, Joy},
	"great":        {3, Joy},
	"wonderful":    {4, Joy},
	"amazing":      {4, Joy},
	"awesome":      {4, Joy},
	"fantastic":    {4, Joy},
	"delighted":    {4, Joy},
	"excited":      {3, Joy},
	"fun":          {2, Joy},
	"enjoyed":      {3, Joy},
	"laughed":      {2, Joy},
	"smiled":       {2, Joy},
	"beautiful":    {3, Joy},
	"energized":    {2, Joy},
	"feel good":    {3, Joy},
	"feeling good": {3, Joy},
	"best day":     {5, Joy},
	"good":         {2, ""},
	"nice":         {2, ""},
	"fine":         {1, ""},

	// gratitude
	"grateful":    {3, Gratitude},
	"thankful":    {3, Gratitude},
	"thanks":      {2, Gratitude},
	"appreciate":  {2, Gratitude},
	"appreciated": {2, Gratitude},
	"blessed":     {3, Gratitude},

	// calm
	"calm":     {2, Calm},
	"peaceful": {3, Calm},
	"relaxed":  {2, Calm},
	"rested":   {2, Calm},
	"content":  {2, Calm},
	"at peace": {3, Calm},

	// pride
	"proud":        {3, Pride},
	"accomplished": {3, Pride},
	"achieved":     {3, Pride},
	"productive":   {2, Pride},
	"nailed":       {3, Pride},
	"well done":    {2, Pride},

	// love
	"love":   {3, Love},
	"loved":  {3, Love},
	"lovely": {3, Love},
	"hug":    {2, Love},

	// hope
	"hopeful":         {3, Hope},
	"optimistic":      {3, Hope},
	"motivated":       {3, Hope},
	"inspired":        {3, Hope},
	"better":          {1, Hope},
	"looking forward": {3, Hope},

	// stress
	"stressed":    {-3, Stress},
	"stress":      {-2, Stress},
	"stressful":   {-3, Stress},
	"overwhelmed": {-4, Stress},
	"pressure":    {-2, Stress},
	"hectic":      {-2, Stress},

	// sadness
	"sad":          {-3, Sadness},
	"unhappy":      {-3, Sadness},
	"depressed":    {-5, Sadness},
	"miserable":    {-4, Sadness},
	"cried":        {-3, Sadness},
	"crying":       {-3, Sadness},
	"hurt":         {-3, Sadness},
	"disappointed": {-3, Sadness},
	"heartbroken":  {-5, Sadness},

	// anxiety
	"anxious": {-3, Anxiety},
	"anxiety": {-3, Anxiety},
	"worried": {-3, Anxiety},
	"worry":   {-2, Anxiety},
	"nervous": {-2, Anxiety},
	"afraid":  {-3, Anxiety},
	"scared":  {-3, Anxiety},
	"panic":   {-4, Anxiety},

	// anger
	"angry":      {-3, Anger},
	"mad":        {-2, Anger},
	"furious":    {-4, Anger},
	"annoyed":    {-2, Anger},
	"frustrated": {-3, Anger},
	"irritated":  {-2, Anger},
	"hate":       {-4, Anger},
	"fed up":     {-3, Anger},

	// fatigue
	"tired":      {-2, Fatigue},
	"exhausted":  {-3, Fatigue},
	"drained":    {-3, Fatigue},
	"sleepy":     {-1, Fatigue},
	"burnout":    {-4, Fatigue},
	"burned out": {-4, Fatigue},

	// loneliness
	"lonely":   {-3, Loneliness},
	"alone":    {-2, Loneliness},
	"isolated": {-3, Loneliness},
	"left out": {-3, Loneliness},

	"bad":       {-2, ""},
	"terrible":  {-4, ""},
	"awful":     {-4, ""},
	"horrible":  {-4, ""},
	"worst":     {-4, ""},
	"bad day":   {-3, ""},
	"worst day": {-5, ""},
}

// emojiLexicon 中的表情按单个 token 处理
var emojiLexicon = map[rune]term{
	'😀': {2, Joy},
	'😄': {3, Joy},
	'😊': {2, Joy},
	'🥰': {3, Love},
	'❤': {3, Love},
	'🙏': {2, Gratitude},
	'😌': {2, Calm},
	'💪': {2, Pride},
	'😢': {-3, Sadness},
	'😭': {-4, Sadness},
	'😰': {-3, Anxiety},
	'😡': {-4, Anger},
	'😠': {-3, Anger},
	'😴': {-1, Fatigue},
}

// cjkEntry 为中文短语，按子串匹配；紧邻其前的「不」「没」会反转极性
type cjkEntry struct {
	phrase string
	term   term
}

var cjkLexicon = []cjkEntry{
	{"开心", term{3, Joy}},
	{"快乐", term{3, Joy}},
	{"高兴", term{3, Joy}},
	{"幸福", term{4, Joy}},
	{"感恩", term{3, Gratitude}},
	{"感谢", term{2, Gratitude}},
	{"平静", term{2, Calm}},
	{"放松", term{2, Calm}},
	{"自豪", term{3, Pride}},
	{"充实", term{2, Pride}},
	{"期待", term{2, Hope}},
	{"难过", term{-3, Sadness}},
	{"伤心", term{-3, Sadness}},
	{"沮丧", term{-3, Sadness}},
	{"压力", term{-2, Stress}},
	{"焦虑", term{-3, Anxiety}},
	{"担心", term{-2, Anxiety}},
	{"生气", term{-3, Anger}},
	{"愤怒", term{-4, Anger}},
	{"烦躁", term{-3, Anger}},
	{"疲惫", term{-3, Fatigue}},
	{"孤独", term{-3, Loneliness}},
	{"寂寞", term{-3, Loneliness}},
}

var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"dont":    {},
	"didnt":   {},
	"doesnt":  {},
	"isnt":    {},
	"wasnt":   {},
	"arent":   {},
	"werent":  {},
	"cant":    {},
	"cannot":  {},
	"couldnt": {},
	"wont":    {},
	"wouldnt": {},
	"hardly":  {},
	"barely":  {},
	"without": {},
}

var intensifiers = map[string]struct{}{
	"very":       {},
	"really":     {},
	"so":         {},
	"extremely":  {},
	"super":      {},
	"incredibly": {},
	"truly":      {},
	"deeply":     {},
}
