package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/seed"
	"github.com/vnkhanh/bds-backend/services"
)

var rootCmd = &cobra.Command{
	Use:   "bdsctl",
	Short: "Công cụ quản trị cho BDS backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Println("Không tìm thấy file .env")
		}
	},
}

func openStore() (*services.Store, error) {
	db, err := config.ConnectDatabase()
	if err != nil {
		return nil, fmt.Errorf("kết nối database: %w", err)
	}
	if err := config.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return services.NewStore(db, config.LoadSettings().StoreTTL), nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Tạo/cập nhật bảng",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := openStore(); err != nil {
			return err
		}
		fmt.Println("Migrate xong")
		return nil
	},
}

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ghi dữ liệu mẫu (thành phố, tin đăng, tin tức, menu, cấu hình)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		res, err := seed.Run(cmd.Context(), st, seedForce)
		if err != nil {
			return err
		}
		if res.Skipped {
			fmt.Println("Database đã có tin đăng, dùng --force để ghi đè")
			return nil
		}
		fmt.Printf("Seed xong: %d tin đăng, %d thành phố, %d quận/huyện, %d tin tức, %d trang, %d mục menu\n",
			res.Properties, res.Cities, res.Districts, res.News, res.Pages, res.MenuItems)
		return nil
	},
}

var adminInput services.UserInput

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Tạo tài khoản quản trị",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		in := adminInput
		in.Role = models.RoleAdmin
		user, err := st.CreateUser(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("Đã tạo admin %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Xuất toàn bộ tin đăng ra file Excel",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		props := services.SortProperties(st.Snapshot(cmd.Context()).Properties(), services.SortNewest)

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := services.WriteListingsXLSX(f, props); err != nil {
			return err
		}
		fmt.Printf("Đã xuất %d tin đăng ra %s\n", len(props), exportOut)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Xóa dữ liệu cũ rồi seed lại")

	createAdminCmd.Flags().StringVar(&adminInput.Username, "username", "admin", "Tên đăng nhập")
	createAdminCmd.Flags().StringVar(&adminInput.Password, "password", "", "Mật khẩu (tối thiểu 6 ký tự)")
	createAdminCmd.Flags().StringVar(&adminInput.Name, "name", "Quản trị viên", "Tên hiển thị")
	createAdminCmd.Flags().StringVar(&adminInput.Email, "email", "", "Email")
	_ = createAdminCmd.MarkFlagRequired("password")

	exportCmd.Flags().StringVar(&exportOut, "out", "listings-"+time.Now().Format("20060102")+".xlsx", "File xuất")

	rootCmd.AddCommand(migrateCmd, seedCmd, createAdminCmd, exportCmd)
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
