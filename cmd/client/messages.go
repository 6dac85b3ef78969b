package main

func getMessages() []string {
	return []string{
		"hello",
		"how are you?",
		"stay in touch",
		"nice to meet you",
		"good morning",
		"afternoon!",
		"hi, fellas!",
		"普普通通的第二段测试内容。",
		"写点什么好呢？",
		"",
	}
}
