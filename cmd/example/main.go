package main

import (
	"context"
	"fmt"
	"os"

	"github.com/embedfs/gofat"
	"github.com/spf13/afero"
)

// main is just a example main to play with GoFAT.
func main() {
	argsWithoutProg := os.Args[1:]
	if len(argsWithoutProg) <= 0 {
		fmt.Println("Please provide a filename.")
		os.Exit(1)
	}

	fsFile, err := os.OpenFile(argsWithoutProg[0], os.O_RDWR, 0)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer fsFile.Close()

	fat, err := gofat.New(fsFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Opened volume '%v' with type %v\n\n", fat.Label(), fat.FSType())

	afero.Walk(fat, "", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Println(err)
			return err
		}
		fmt.Println(path, info.IsDir(), info.ModTime())
		return nil
	})

	free, err := fat.FatTable().FreeClusterCount(context.Background())
	if err != nil {
		fmt.Println("could not count free clusters", err)
		os.Exit(1)
	}
	fmt.Printf("\n%v free clusters\n\n", free)

	file, err := fat.Create("hello.txt")
	if err != nil {
		fmt.Println("could not create the file", err)
		os.Exit(1)
	}

	if _, err := file.WriteString("Hello from GoFAT!\n"); err != nil {
		fmt.Println("could not write the file", err)
		os.Exit(1)
	}
	if err := file.Close(); err != nil {
		fmt.Println("could not close the file", err)
		os.Exit(1)
	}

	file, err = fat.Open("hello.txt")
	if err != nil {
		fmt.Println("could not open the file again", err)
		os.Exit(1)
	}

	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		fmt.Println("could not stat the file", err)
		os.Exit(1)
	}
	buffer := make([]byte, stat.Size())
	if _, err := file.Read(buffer); err != nil {
		fmt.Println("could not read the file", err)
		os.Exit(1)
	}
	fmt.Println("Content of " + stat.Name() + ":\n\n" + string(buffer))
}
