package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/logocube/api"
	"github.com/matt-g-everett/logocube/logging"
	"github.com/matt-g-everett/logocube/render"
	"github.com/matt-g-everett/logocube/scene"
	"github.com/matt-g-everett/logocube/stream"
	"go.uber.org/zap"
)

const inboxSize = 64

type app struct {
	Config   scene.Config
	Log      *zap.Logger
	Director *scene.Director
	Inbox    chan scene.PointerEvent
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	a.Inbox = scene.NewInbox(inboxSize)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Log.Info("Connected", zap.String("broker", a.Config.Mqtt.URL))
	if err := a.Streamer.Subscribe(); err != nil {
		a.Log.Error("Subscribe failed", zap.Error(err))
	}
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	a.Log.Warn("Connection lost", zap.Error(err))
}

func (a *app) readConfig(configPath string) error {
	c, err := scene.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.Config = c
	return nil
}

func (a *app) connect(ctx context.Context) error {
	mqtt.ERROR = zap.NewStdLog(a.Log.Named("mqtt"))
	mqtt.CRITICAL = mqtt.ERROR

	c := a.Config.Mqtt
	options := mqtt.NewClientOptions().
		AddBroker(c.URL).
		SetClientID(c.ClientID).
		SetUsername(c.Username).
		SetPassword(c.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(c, a.Client, a.Director, a.Inbox, a.Log.Named("stream"))

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect %s: %w", c.URL, token.Error())
	}

	go func() {
		if err := a.Streamer.Run(ctx); err != nil && err != context.Canceled {
			a.Log.Error("Streamer stopped", zap.Error(err))
		}
	}()
	return nil
}

func (a *app) run(ctx context.Context, headless scene.HeadlessConfig, windowed bool) error {
	d, err := scene.NewDirector(a.Config, a.Log.Named("scene"))
	if err != nil {
		return err
	}
	d.Init(a.Config.Window.Width, a.Config.Window.Height)
	a.Director = d

	if a.Config.Mqtt.Enabled {
		if err := a.connect(ctx); err != nil {
			return err
		}
		defer a.Client.Disconnect(250)
	}

	if a.Config.Api.Addr != "" {
		srv := api.NewApi(d, a.Inbox, a.Log.Named("api"))
		go func() {
			if err := srv.Serve(ctx, a.Config.Api.Addr); err != nil {
				a.Log.Error("API server stopped", zap.Error(err))
			}
		}()
	}

	if !windowed {
		err := scene.RunHeadless(ctx, d, a.Inbox, headless)
		if err == context.Canceled {
			return nil
		}
		return err
	}

	g, err := render.NewGame(ctx, d, a.Inbox, a.Config.Hud, a.Log.Named("render"))
	if err != nil {
		return err
	}
	return render.Run(g, a.Config.Window)
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	headless := flag.Bool("headless", false, "Run without a window.")
	hz := flag.Int("hz", 0, "Frame rate in headless mode (0 = window tps).")
	ticks := flag.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.Parse()

	// Read the config
	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(a.Config.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	a.Log = logger
	a.Log.Info("Config loaded", zap.String("path", *configPath),
		zap.Int("width", a.Config.Window.Width), zap.Int("height", a.Config.Window.Height),
		zap.Bool("mqtt", a.Config.Mqtt.Enabled), zap.String("api", a.Config.Api.Addr))

	if *hz > 0 {
		a.Config.Window.TPS = *hz
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx, scene.HeadlessConfig{Ticks: *ticks}, !*headless); err != nil {
		a.Log.Error("Exiting", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
