package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/blackjack-table/internal/logger"
	"github.com/palemoky/blackjack-table/internal/network/client"
	"github.com/palemoky/blackjack-table/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:2121", "服务器地址")
	flag.Parse()

	// 终端被 TUI 占用，日志写入文件
	if err := logger.Init(); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)

	c := client.NewClient(serverURL)
	if err := c.Connect(); err != nil {
		log.Fatalf("连接服务器失败: %v", err)
	}
	c.StartHeartbeat()

	p := tea.NewProgram(ui.New(c), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
